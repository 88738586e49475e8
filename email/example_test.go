package email_test

import (
	"fmt"

	"github.com/amp-labs/semtype/email"
)

// sendEmail can only ever receive an address that passed validation.
func sendEmail(to email.Address, message string) {
	fmt.Printf("to %s: %s\n", to, message)
}

func Example() {
	fmt.Println(email.IsValid("kjones@megacorp.com"))
	fmt.Println(email.IsValid("not a valid email address"))

	addr, err := email.New("kjones@megacorp.com")
	if err != nil {
		panic(err)
	}

	sendEmail(addr, "message")

	_, err = email.New("not a valid email address")
	fmt.Println(err)

	// Output:
	// true
	// false
	// to kjones@megacorp.com: message
	// invalid EmailAddress: not a valid email address
}
