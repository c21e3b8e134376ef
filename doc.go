// Package verifykit provides a Go client SDK for the VerifyKit
// identity-verification API, covering email, phone, address and
// combined ("all-in-one") verification.
//
// Every verification call returns a Response map; failures of any kind
// (local validation, network, HTTP) are folded into the response rather
// than returned as errors, so callers never need to recover from a
// failed call.
//
// Basic usage:
//
//	client, err := verifykit.New("your-api-key", "example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp := client.VerifyEmail(ctx, "user@example.com", nil)
//	if resp.IsError() {
//	    fmt.Println("verification failed:", resp.Message())
//	    return
//	}
//
//	fmt.Println("result:", resp["result"])
package verifykit
