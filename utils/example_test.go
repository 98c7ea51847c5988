package utils_test

import (
	"fmt"

	"github.com/sixbank/contractlibs/utils"
)

func ExampleIsValidAccountNumber() {
	fmt.Println(utils.IsValidAccountNumber("SIX0532013000", "SIX"))
	fmt.Println(utils.IsValidAccountNumber("SIX05320130", "SIX"))
	// Output:
	// true
	// false
}

func ExampleExtractNumericPart() {
	body, ok := utils.ExtractNumericPart("SIX0532013000", "SIX")
	fmt.Println(body, ok)
	// Output: 0532013000 true
}

func ExampleMaskAccountNumber() {
	fmt.Println(utils.MaskAccountNumber("SIX0532013000"))
	fmt.Println(utils.MaskAccountNumber("AB"))
	// Output:
	// *********3000
	// AB
}
