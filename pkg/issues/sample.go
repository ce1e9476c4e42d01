package issues

// Sample returns the demo data shown when no issues file is given.
func Sample() []Issue {
	return []Issue{
		{ID: "c9613c41-32f0-435e-aef2-b17ce758431b", Name: "TypeError", Message: "Cannot read properties of undefined (reading 'length')", Status: StatusOpen, NumEvents: 105, NumUsers: 56, Value: 1},
		{ID: "1f62d084-cc32-4c7b-943d-417c5dac896e", Name: "TypeError", Message: "U is not a function", Status: StatusResolved, NumEvents: 45, NumUsers: 34, Value: 1},
		{ID: "cb4d9aab-6fc6-4e1f-9de5-0d3b1f80bda6", Name: "SyntaxError", Message: "Unexpected token '<'", Status: StatusOpen, NumEvents: 12, NumUsers: 9, Value: 2},
		{ID: "d6c3f0a9-b6a1-4a0e-8d3e-2f1f2c3ef0b1", Name: "ReferenceError", Message: "process is not defined", Status: StatusOpen, NumEvents: 3, NumUsers: 3, Value: 1},
		{ID: "e1a4b5c2-92fd-4f6e-b0b8-1e6f4f0c7a22", Name: "RangeError", Message: "Maximum call stack size exceeded", Status: StatusResolved, NumEvents: 7, NumUsers: 2, Value: 3},
		{ID: "f7b8c9d0-11aa-4bcc-8dde-9f0a1b2c3d4e", Name: "NetworkError", Message: "Failed to fetch", Status: StatusOpen, NumEvents: 88, NumUsers: 41, Value: 2},
	}
}
