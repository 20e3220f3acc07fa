package prompts

// customizeFile holds the prompt templates for the resume customization call.
const customizeFile = "customize.json"

// BuildCustomizePrompt assembles the full customization prompt from the fixed
// template, the verbatim job posting, and the verbatim resume YAML. The
// function is pure: identical inputs always produce byte-identical output.
func BuildCustomizePrompt(resumeYAML, jobPosting string) string {
	system := MustGet(customizeFile, "customize_system")
	body := Format(MustGet(customizeFile, "customize_body"), map[string]string{
		"JobPosting": jobPosting,
		"Resume":     resumeYAML,
	})
	return system + "\n\n" + body
}
