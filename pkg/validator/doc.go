// Package validator provides a small set of validation rules that delegate
// their user-facing messages to the formatter.
//
// Rules only describe what failed: the field, a message group and key from
// the contract table, and the key's params. Apply runs the rules and renders
// each failure through a formatter in the request's locale:
//
//	err := validator.Apply(ctx, manager.Formatter(),
//	    validator.Required("email", req.Email).Label("Email"),
//	    validator.Email("email", req.Email).Label("Email"),
//	    validator.MinLen("password", req.Password, 8).Label("Password"),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    // errs.Get("password") == []string{"Password is too short (minimum: 8 characters)"}
//	}
package validator
