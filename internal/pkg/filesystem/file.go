package filesystem

// FileDef is a file path with a human-readable description for error messages.
type FileDef struct {
	desc string
	path string
}

// RawFile is a file with string content.
type RawFile struct {
	*FileDef
	Content string
}

func NewFileDef(path string) *FileDef {
	return &FileDef{path: path}
}

func NewRawFile(path, content string) *RawFile {
	return &RawFile{FileDef: NewFileDef(path), Content: content}
}

func (f *FileDef) Path() string {
	return f.path
}

func (f *FileDef) SetPath(v string) *FileDef {
	f.path = v
	return f
}

func (f *FileDef) Description() string {
	return f.desc
}

func (f *FileDef) SetDescription(v string) *FileDef {
	f.desc = v
	return f
}
