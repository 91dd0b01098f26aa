// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/app"
	"github.com/MKhiriev/go-storefront/internal/service"
)

var errUnknownTrustedState = errors.New("state must be show, hide or toggle")

var userMessages = []struct {
	target error
	msg    string
}{
	{service.ErrNotAuthenticated, app.MsgNotAuthenticated},
	{service.ErrInvalidCredential, app.MsgInvalidToken},
	{adapter.ErrConflict, app.MsgConflictRetry},
}

// userError prefixes known failures with the message an admin can act on.
func userError(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range userMessages {
		if errors.Is(err, m.target) {
			return fmt.Errorf("%s: %w", m.msg, err)
		}
	}
	return err
}
