// Package manifest loads candidate parser declarations from YAML or TOML
// manifests.
//
// A manifest is what the host's declaration discovery would hand over: an
// ordered list of annotated classes with their constructors, methods and
// supertypes. Order is preserved; it is the delivery order of the pass.
//
// # Schema Overview
//
//	version: "1"
//	parsers:
//	  - class: com.example.ResponseParser
//	    location: src/main/java/com/example/ResponseParser.kt:12
//	    visibility: public            # public | protected | package | private
//	    abstract: false
//	    final: false
//	    type_parameters: [T]          # or [{name: T, bounds: [kotlin.Any]}]
//	    supertypes:
//	      - rxhttp.wrapper.parse.TypeParser<T>
//	      - rxhttp.wrapper.parse.Parser<T>
//	    annotation:
//	      name: Response              # alias, defaults to the simple name
//	      wrappers: [java.util.Map]   # kotlin.collections.List is always implied
//	    constructors:
//	      - visibility: protected
//	      - visibility: public
//	        parameters:
//	          - {name: type, type: java.lang.reflect.Type}
//	    methods:
//	      - name: onParse
//	        parameters: [{name: response, type: okhttp3.Response}]
//	        returns: T
//
// The same schema can be written as TOML, one [[parsers]] table per class;
// the loader picks the format by the .toml extension. Unknown keys are
// rejected in both formats.
//
// # Type Expressions
//
// Types are written as qualified names with optional type arguments and
// array suffixes: "java.util.Map<K, java.util.List<V>>", "java.lang.reflect.Type[]".
// A bare identifier naming one of the declaration's type parameters is a
// type variable. A trailing "?" makes a type nullable and type arguments may
// be projected: "kotlin.collections.Map<*, out T>?".
//
// In YAML flow sequences ([a, b]) a comma ends the item, so type expressions
// with more than one type argument must be quoted there.
package manifest
