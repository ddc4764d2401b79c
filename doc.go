// Package passcheck evaluates password strength.
//
// An evaluation combines four independent analyses of the password text:
// character-class composition, weak-pattern detection (repeated runs,
// code-point sequences, keyboard rows), a case-insensitive lookup in a
// dictionary of common passwords, and a pool-size entropy estimate. The
// scoring function folds these into an integer from 0 to 100 and a
// Weak/Medium/Strong band.
//
//	r, err := passcheck.Evaluate("Tr0ub4dor&3XyZ")
//	if err != nil {
//		return err
//	}
//	fmt.Println(r.Score, r.Strength, r.Patterns)
//
// Evaluation is pure: the same input always yields the same report, nothing
// is cached and the password is never logged or stored.
package passcheck
