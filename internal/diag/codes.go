// Package diag provides the semantic analyzer's diagnostic taxonomy, the
// sink that collects diagnostics in traversal order, and text/JSON
// renderers for them.
package diag

// Code identifies one diagnostic kind. The set is closed: the checker and
// the type-declaration resolver emit nothing outside this taxonomy.
type Code string

const (
	// SEM001 indicates a type annotation names an unbound type
	SEM001 Code = "SEM001" // UnboundType

	// SEM002 indicates a type declaration refers to a type that is bound nowhere
	SEM002 Code = "SEM002" // UnresolvedType

	// SEM003 indicates a cycle of pure type aliases
	SEM003 Code = "SEM003" // CyclicTypeDec

	// SEM004 indicates the same type name declared twice in one block
	SEM004 Code = "SEM004" // TypeRedefined

	// SEM005 indicates a reference to an undeclared variable
	SEM005 Code = "SEM005" // UndefinedVar

	// SEM006 indicates a call to an undeclared function
	SEM006 Code = "SEM006" // UndefinedFunction

	// SEM007 indicates a function name used as a variable
	SEM007 Code = "SEM007" // NameBoundToFunction

	// SEM008 indicates a variable name used as a function
	SEM008 Code = "SEM008" // NameBoundToVar

	// SEM009 indicates a field selection that the record type does not declare
	SEM009 Code = "SEM009" // NoSuchField

	// SEM010 indicates a field selection on a non-record value
	SEM010 Code = "SEM010" // NonRecordAccess

	// SEM011 indicates a non-integer array subscript
	SEM011 Code = "SEM011" // NonIntSubscript

	// SEM012 indicates a subscript on a non-array value
	SEM012 Code = "SEM012" // NonArrayAccess

	// SEM013 indicates a call with the wrong number of arguments
	SEM013 Code = "SEM013" // ArityMismatch

	// SEM014 indicates an argument whose type does not match the formal
	SEM014 Code = "SEM014" // ArgumentMismatch

	// SEM015 indicates a parameter name declared twice in one function
	SEM015 Code = "SEM015" // ArgumentRedefined

	// SEM016 indicates an operand whose type the operator does not accept
	SEM016 Code = "SEM016" // OperandMismatch

	// SEM017 indicates a record-literal field whose type does not match the declaration
	SEM017 Code = "SEM017" // FieldMismatch

	// SEM018 indicates a declared field missing from a record literal
	SEM018 Code = "SEM018" // MissingField

	// SEM019 indicates a record literal whose type name is not a record type
	SEM019 Code = "SEM019" // NonRecordType

	// SEM020 indicates a record literal whose type name is unbound
	SEM020 Code = "SEM020" // UnboundRecordType

	// SEM021 indicates an assignment or initialization with an incompatible type
	SEM021 Code = "SEM021" // AssignmentMismatch

	// SEM022 indicates a nil initializer without a record type annotation
	SEM022 Code = "SEM022" // NilInitialization

	// SEM023 indicates a non-integer condition in if or while
	SEM023 Code = "SEM023" // ConditionMismatch

	// SEM024 indicates a one-armed if whose branch is not unit
	SEM024 Code = "SEM024" // NonUnitIf

	// SEM025 indicates a while body that is not unit
	SEM025 Code = "SEM025" // NonUnitWhile

	// SEM026 indicates a for body that is not unit
	SEM026 Code = "SEM026" // NonUnitFor

	// SEM027 indicates a procedure body with a non-unit result
	SEM027 Code = "SEM027" // NonUnitProcedure

	// SEM028 indicates if branches with incompatible types
	SEM028 Code = "SEM028" // IfBranchMismatch

	// SEM029 indicates a non-integer bound in a for range
	SEM029 Code = "SEM029" // ForRangeMismatch

	// SEM030 indicates a non-integer array size
	SEM030 Code = "SEM030" // ArraySizeMismatch

	// SEM031 indicates an array initializer incompatible with the element type
	SEM031 Code = "SEM031" // ArrayInitMismatch

	// SEM032 indicates an array expression whose type name is not an array type
	SEM032 Code = "SEM032" // NonArrayType

	// SEM033 indicates a function body incompatible with the declared result
	SEM033 Code = "SEM033" // TypeMismatch

	// SEM034 indicates a break outside any loop
	SEM034 Code = "SEM034" // IllegalBreak
)
