// Package validate applies the structural acceptance rules for parser
// declarations. The first violated rule rejects the declaration with a
// self-describing message that quotes the corrective form.
package validate
