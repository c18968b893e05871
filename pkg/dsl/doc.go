// Package dsl provides a fluent builder for machine definitions, for hosts
// that assemble machines in code rather than loading documents.
//
//	def, err := dsl.New("q0").
//	    Input("0", "1").
//	    Accept("accept").
//	    Reject("reject").
//	    On("q0", "0").Write("0").Right().To("q0").
//	    On("q0", "1").Write("1").Right().To("q1").
//	    On("q0", "_").Write("_").Right().To("accept").
//	    On("q1", "0").Write("0").Right().To("q1").
//	    On("q1", "1").Write("1").Right().To("q0").
//	    On("q1", "_").Write("_").Right().To("reject").
//	    Build()
//
// Build infers the state set and the tape alphabet from the rules unless
// States/Tape pin them explicitly, then delegates validation to machine.New.
package dsl
