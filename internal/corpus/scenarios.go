package corpus

// Scenario is one fixed input/output pair whose repaired form is
// pinned to a golden fixture under testdata/golden.
type Scenario struct {
	Name  string
	Input string
}

// Scenarios covers the range of repairs described across the input
// language: quoting, trailing commas, alternate keyword spellings,
// concatenation, code fences, and NDJSON.
var Scenarios = []Scenario{
	{"single_quotes_and_unquoted_key", `{name: 'John', age: 30}`},
	{"trailing_comma_object", `{"name": "John", "age": 30,}`},
	{"trailing_comma_array", `[1, 2, 3,]`},
	{"python_keywords", `{"valid": True, "invalid": False, "empty": None}`},
	{"ndjson_two_objects", "{\"a\":1}\n{\"b\":2}"},
	{"missing_end_quote_before_delimiter", `["hello]`},
	{"mongo_function_wrapper", `NumberLong("2")`},
	{"concatenated_strings", `"hello" + "world"`},
	{"markdown_fence", "```json\n{\"a\":1}\n```"},
	{"unclosed_object", `{"a":1`},
	{"unclosed_array", `[1,2`},
	{"comment_line", "{\n  // a comment\n  \"a\": 1\n}"},
	{"undefined_becomes_null", `{"key": undefined}`},
}
