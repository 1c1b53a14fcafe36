package model

// Path represents a file system path.
type Path string

// FileCount holds the number of boundaries found in a single file.
type FileCount struct {
	Path  Path
	Count int
}
