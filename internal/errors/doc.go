// Package errors provides structured, actionable errors for the recycler
// tooling.
//
// Pool operations never fail, so errors only come from the ambient layers:
// configuration loading, report storage and the CLI's HTTP server. Each
// error carries a registered code, a category, a short message and an
// optional hint.
//
// # Usage
//
//	err := errors.New("E002").
//	    WithFile("recycler.json").
//	    WithSuggestion("Check for a trailing comma").
//	    Wrap(jsonErr)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E002: Config file is not valid JSON
//	//
//	//   recycler.json
//	//
//	//   Hint: Check for a trailing comma
package errors
