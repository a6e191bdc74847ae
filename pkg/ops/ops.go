package ops

// Operation names accepted in the input document.
const (
	OpEcho      = "echo"
	OpUppercase = "uppercase"
	OpLowercase = "lowercase"
	OpDescribe  = "describe"
)

// Transform turns a validated message into an operation result.
type Transform func(message string) *Result

// Definition binds an operation name to its transform and field requirements.
// The same table drives dispatch and the describe self-description, so the
// two cannot drift apart.
type Definition struct {
	Description string
	Required    []string
	Optional    []string
	Transform   Transform
}

// Operations is the fixed operation table.
var Operations = map[string]Definition{
	OpEcho: {
		Description: "Returns the input message as-is",
		Required:    []string{"message"},
		Optional:    []string{},
		Transform:   Echo,
	},
	OpUppercase: {
		Description: "Converts message to uppercase",
		Required:    []string{"message"},
		Optional:    []string{},
		Transform:   Uppercase,
	},
	OpLowercase: {
		Description: "Converts message to lowercase",
		Required:    []string{"message"},
		Optional:    []string{},
		Transform:   Lowercase,
	},
	OpDescribe: {
		Description: "Returns the input schema and available operations",
		Required:    []string{},
		Optional:    []string{},
	},
}

// Describe reads the table to build its data block, so its own transform
// cannot be part of the Operations literal: that would make the initializer
// depend on itself. The entry is completed here instead.
func init() {
	def := Operations[OpDescribe]
	def.Transform = func(string) *Result { return Describe() }
	Operations[OpDescribe] = def
}

// Names returns the operation names in their documented order, used for the
// describe schema enum.
func Names() []string {
	return []string{OpEcho, OpUppercase, OpLowercase, OpDescribe}
}
