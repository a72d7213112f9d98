package model

// Well-known classes referenced by generated code.
var (
	// TypeMarkerClass is the reflective placeholder resolved into Class<T> parameters.
	TypeMarkerClass = NewClassName("java.lang.reflect", "Type")
	// ClassRefClass is the class-reference type generated parameters use.
	ClassRefClass = NewClassName("java.lang", "Class")
	// ListClass is the default sequence wrapper.
	ListClass = NewClassName("kotlin.collections", "List")
	// JavaListClass is the platform spelling of ListClass.
	JavaListClass = NewClassName("java.util", "List")
	// ObservableClass is the asynchronous result container of the as-family.
	ObservableClass = NewClassName("io.reactivex.rxjava3.core", "Observable")
	// ParameterizedTypeImplClass builds W<T> type values at runtime.
	ParameterizedTypeImplClass = NewClassName("rxhttp.wrapper.entity", "ParameterizedTypeImpl")
	// CallFactoryClass is the receiver of the extension family.
	CallFactoryClass = NewClassName("rxhttp.wrapper", "CallFactory")
	// CallAwaitClass is the result container of the extension family.
	CallAwaitClass = NewClassName("rxhttp.wrapper.coroutines", "CallAwait")
	// DefaultParserBase is the supertype every parser must inherit.
	DefaultParserBase = NewClassName("rxhttp.wrapper.parse", "Parser")
	// DefaultResponseClass is the parameter type of the parse method.
	DefaultResponseClass = NewClassName("okhttp3", "Response")
)

// DefaultParseMethod is the name of the response-parsing method.
const DefaultParseMethod = "onParse"

// IsTypeMarker returns true for the single "Type" marker.
func IsTypeMarker(t *TypeName) bool {
	return t != nil && t.Kind == TypeKindClass && t.Class == TypeMarkerClass
}

// IsTypeArrayMarker returns true for the "Type[]" marker.
func IsTypeArrayMarker(t *TypeName) bool {
	return t != nil && t.Kind == TypeKindArray && IsTypeMarker(t.Elem)
}

// IsListClass returns true for the sequence wrapper in either spelling.
func IsListClass(c ClassName) bool {
	return c == ListClass || c == JavaListClass
}

// IsClassRef returns true for Class and Class<...>.
func IsClassRef(t *TypeName) bool {
	return t.Is(ClassRefClass)
}
