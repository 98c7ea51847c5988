// Package contractlibs is the shared contract library for the account
// microservices. It has no runtime of its own; services import its packages to
// agree on wire shapes and account number handling:
//
//   - utils: generate, validate, decompose and mask account numbers of the form
//     PREFIX##########, e.g. SIX0532013000
//   - enums: AccountType, AccountStatus, HolderType and LimitType
//   - models: APIResponse and APIErrorResponse envelopes and account records
//   - events: account created, status changed and balance updated payloads
//   - middleware: gin helpers that emit the envelopes, authenticate bearer
//     tokens and log requests with masked account numbers
//   - config: the account number prefix and JWT secret
//
// A typical account service issues a number and announces it:
//
//	accountNumber, err := utils.GenerateAccountNumber("SIX")
//	if err != nil {
//		return err
//	}
//	evt := events.NewAccountCreatedEvent(accountID, accountNumber, customerID)
//	middleware.RespondWithData(c, http.StatusCreated, "Account created successfully", account.ToView())
//
// Account number uniqueness is not checked here; enforce it where numbers are
// stored, e.g. with a unique constraint.
package contractlibs
