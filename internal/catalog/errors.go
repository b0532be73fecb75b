package catalog

import "fmt"

// modelWithoutLanguageError signals a query naming a model but no language.
type modelWithoutLanguageError struct{}

func (modelWithoutLanguageError) Error() string {
	return "A model cannot be specified without a language"
}

// IsModelWithoutLanguage reports whether err indicates a model query parameter
// supplied without a language.
func IsModelWithoutLanguage(err error) bool {
	_, ok := err.(modelWithoutLanguageError)
	return ok
}

// languageNotAvailableError signals a language with no installed models.
type languageNotAvailableError struct{ language string }

func (e languageNotAvailableError) Error() string {
	return fmt.Sprintf("Language '%s' is not available", e.language)
}

// IsLanguageNotAvailable reports whether err indicates a language with no
// installed models.
func IsLanguageNotAvailable(err error) bool {
	_, ok := err.(languageNotAvailableError)
	return ok
}

// modelNotFoundError signals a model name not installed for a language.
type modelNotFoundError struct{ model, language string }

func (e modelNotFoundError) Error() string {
	return fmt.Sprintf("Model '%s' not found for language '%s'", e.model, e.language)
}

// IsModelNotFound reports whether err indicates a missing model for an
// otherwise available language.
func IsModelNotFound(err error) bool {
	_, ok := err.(modelNotFoundError)
	return ok
}

// ambiguousModelError signals a language with several models and no
// unqualified default to fall back to.
type ambiguousModelError struct{ language string }

func (e ambiguousModelError) Error() string {
	return fmt.Sprintf("Multiple models are installed for language '%s', specify one with the model parameter", e.language)
}

// IsAmbiguousModel reports whether err indicates an ambiguous model choice.
func IsAmbiguousModel(err error) bool {
	_, ok := err.(ambiguousModelError)
	return ok
}
