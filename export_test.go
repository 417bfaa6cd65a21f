package apiclient

// Test-only exports for internal functions.
var (
	ParseTemplate = parseTemplate
	ValidIdent    = validIdent

	ClassifyBody     = classifyBody
	ClassifyResponse = classifyResponse
	EncodeForm       = encodeForm
	Stringify        = stringify

	MultipartContent = (*Multipart).content
)

// Placeholders exposes the parsed placeholder list for external tests.
func (t *template) Placeholders() []string { return t.placeholders() }

// Interpolate delegates to the internal interpolation.
func (t *template) Interpolate(resolve func(name string) string) string {
	return t.interpolate(resolve)
}
