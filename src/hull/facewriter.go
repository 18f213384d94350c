package hull

import (
	"encoding/json"
	"fmt"
	"io"
)

// FaceWriter renders a built hull's face list to an io.Writer, either as
// whitespace-separated text (one face per line) or as JSON. It carries no
// state of its own beyond the destination writer.
type FaceWriter struct {
	w io.Writer
}

// NewFaceWriter returns a FaceWriter that writes to w.
func NewFaceWriter(w io.Writer) *FaceWriter {
	return &FaceWriter{w: w}
}

// WriteText writes one line per face, its vertex indices separated by
// single spaces.
func (fw *FaceWriter) WriteText(faces [][]int) error {
	for _, f := range faces {
		for i, idx := range f {
			if i > 0 {
				if _, err := fmt.Fprint(fw.w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(fw.w, "%d", idx); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(fw.w); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes faces as a JSON array of arrays of vertex indices.
func (fw *FaceWriter) WriteJSON(faces [][]int) error {
	return json.NewEncoder(fw.w).Encode(faces)
}
