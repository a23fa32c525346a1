package faker

// MimeType returns a MIME type, e.g. "video/x-msvideo".
func (g *Generator) MimeType() (string, error) {
	return call[string](g, "mimeType")
}

// FileExtension returns a file extension without the dot, e.g. "avi".
func (g *Generator) FileExtension() (string, error) {
	return call[string](g, "fileExtension")
}
