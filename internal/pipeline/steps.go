package pipeline

// Step categories used in progress events
const (
	CategoryLoading      = "loading"
	CategoryRendering    = "rendering"
	CategorySubstitution = "substitution"
)

// StepDefinition describes one stage of a render
type StepDefinition struct {
	Name        string
	Category    string
	Description string
}

// Steps lists the render stages in execution order
var Steps = []StepDefinition{
	{Name: "load_record", Category: CategoryLoading, Description: "Loading resume record"},
	{Name: "load_template", Category: CategoryLoading, Description: "Loading template and stylesheet"},
	{Name: "render_sections", Category: CategoryRendering, Description: "Rendering sections"},
	{Name: "substitute", Category: CategorySubstitution, Description: "Filling template placeholders"},
}

// stepIndex returns the 1-based position of a step, or 0 if it is unknown
func stepIndex(name string) int {
	for i, step := range Steps {
		if step.Name == name {
			return i + 1
		}
	}
	return 0
}
