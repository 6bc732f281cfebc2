package words

// CatalogError is a custom error type for word catalog errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoWordsAvailable CatalogError = "no words available for the requested tier"
	ErrInvalidWord      CatalogError = "word must have non-empty text and a known difficulty"
)
