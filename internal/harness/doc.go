// Package harness runs shape scenarios: executable checks of how the
// area calculator behaves on a given list of shapes.
//
// # Scenario Format
//
// Scenarios are YAML documents with the following structure:
//
//	name: rectangle_and_circle
//	description: "Rectangle(2,3) plus Circle(1) is 6 + π"
//	shapes:
//	  - kind: rectangle
//	    dims: {width: 2, height: 3}
//	  - kind: circle
//	    dims: {radius: 1}
//	assertions:
//	  - type: total_equals
//	    value: 9.14159
//	    tolerance: 0.00001
//	  - type: order_independent
//	  - type: last_shape_adds
//	    value: 3.14159
//	    tolerance: 0.00001
//
// # Assertion Types
//
//   - total_equals: the total is value, within tolerance
//   - shape_count: exactly count shapes were built
//   - order_independent: the reversed list has the same total
//   - last_shape_adds: dropping the last shape lowers the total by value
//   - fails_with: building or summing fails with code (a shape error
//     code such as NOT_IMPLEMENTED, or a document code such as E204)
//
// Several scenarios may be concatenated in one YAML stream, separated
// by "---"; LoadScenarios reads them all.
package harness
