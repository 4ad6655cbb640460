// Package services contains server-side business logic: credential
// registration and login (AuthService) and the user directory (DirectoryService).
// Raw store errors stop here; callers only see the sentinel errors of package common.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/logging"
	"github.com/go-playground/validator/v10"
)

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// checkInput validates v and reports the first failing field wrapped in
// common.ErrorValidation.
func checkInput(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s failed %q", common.ErrorValidation, strings.ToLower(verrs[0].Field()), verrs[0].Tag())
	}
	return fmt.Errorf("%w: %v", common.ErrorValidation, err)
}

func checkPassword(password string) error {
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password longer than %d bytes", common.ErrorValidation, maxPasswordBytes)
	}
	return nil
}

// storeError passes expected outcomes through and collapses anything else
// into common.ErrorInternal after logging it.
func storeError(ctx context.Context, log logging.Logger, op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorAlreadyExists) {
		return err
	}
	log.Error(ctx, "store failure", "op", op, "error", err)
	return common.ErrorInternal
}
