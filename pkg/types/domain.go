package types

// ModelRecord represents one installed language/model combination discovered
// in the tessdata directory.
type ModelRecord struct {
	// Language code of the trained model.
	// example: eng
	Language string `json:"language" example:"eng"`
	// Model variant within the language directory. Null when the language has
	// a single unqualified model at the tessdata root.
	// example: fast
	Model *string `json:"model" example:"fast"`
	// Absolute path to the model file on disk.
	// example: /usr/share/tessdata/chi_sim/fast.traineddata
	FullPath string `json:"full_path" example:"/usr/share/tessdata/chi_sim/fast.traineddata"`
	// Path relative to the tessdata root, extension stripped. This is the
	// handle handed to the recognition engine.
	// example: chi_sim/fast
	RelativePath string `json:"relative_path" example:"chi_sim/fast"`
}

// Key returns the identity of the record. Two records are the same catalog
// entry iff their keys are equal; the path fields are derived data.
func (m ModelRecord) Key() ModelKey {
	k := ModelKey{Language: m.Language}
	if m.Model != nil {
		k.Model = *m.Model
		k.HasModel = true
	}
	return k
}

// ModelKey is the comparable (language, model) identity of a ModelRecord.
type ModelKey struct {
	Language string
	Model    string
	HasModel bool
}
