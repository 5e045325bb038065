package lexer

// Metadata describes the tokenizer to host highlighting frameworks: the
// display name plus the aliases, file globs, and MIME types a plugin registry
// needs to route source files here.
type Metadata struct {
	Name      string
	Aliases   []string
	Filenames []string
	MIMETypes []string
}

// Meta returns the registration metadata for the Heather dialect.
func Meta() Metadata {
	return Metadata{
		Name:      "Heather",
		Aliases:   []string{"heather", "hhat", "hhat-heather"},
		Filenames: []string{"*.hhat", "*.hat"},
		MIMETypes: []string{"text/x-heather", "text/x-hhat"},
	}
}
