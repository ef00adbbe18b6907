package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// registerAccountSteps registers signup/login helper steps.
func registerAccountSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAsWithPassword)
	ctx.Step(`^I have a verified account "([^"]*)" with password "([^"]*)"$`, iHaveAVerifiedAccount)
	ctx.Step(`^a verification email was sent to "([^"]*)"$`, aVerificationEmailWasSentTo)
}

func iHaveAVerifiedAccount(ctx context.Context, email, password string) (context.Context, error) {
	return signUpAndVerify(ctx, email, password)
}

func iAmLoggedInAsWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	ctx, err := signUpAndVerify(ctx, email, password)
	if err != nil {
		return ctx, err
	}

	loginBody := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	ctx, err = doRequest(ctx, "POST", "/api/v1/auth/login", bytes.NewBufferString(loginBody))
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	if tc.response.StatusCode != 200 {
		return ctx, fmt.Errorf("login failed with status %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return ctx, fmt.Errorf("failed to parse login response: %w", err)
	}

	tc.accessToken = auth.AccessToken
	tc.refreshToken = auth.RefreshToken
	return SetTestContext(ctx, tc), nil
}

func aVerificationEmailWasSentTo(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	for _, sent := range tc.emailSender.SentEmails {
		if sent.To == email {
			return nil
		}
	}
	return fmt.Errorf("no email sent to %s (%d emails sent)", email, len(tc.emailSender.SentEmails))
}

// signUpAndVerify creates an account and confirms it through the verify link
// echoed in the signup response.
func signUpAndVerify(ctx context.Context, email, password string) (context.Context, error) {
	name := strings.SplitN(email, "@", 2)[0]
	signupBody := fmt.Sprintf(`{"name": %q, "email": %q, "password": %q}`, name, email, password)

	ctx, err := doRequest(ctx, "POST", "/api/v1/auth/signup", bytes.NewBufferString(signupBody))
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	if tc.response.StatusCode != 201 {
		return ctx, fmt.Errorf("signup failed with status %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var registered struct {
		VerifyLink string `json:"verify_link"`
	}
	if err := json.Unmarshal(tc.responseBody, &registered); err != nil {
		return ctx, fmt.Errorf("failed to parse signup response: %w", err)
	}
	if registered.VerifyLink == "" {
		return ctx, fmt.Errorf("signup response carries no verify link. Body: %s", string(tc.responseBody))
	}

	token := registered.VerifyLink[strings.LastIndex(registered.VerifyLink, "/")+1:]
	ctx, err = doRequest(ctx, "GET", "/api/v1/auth/verify/"+token, nil)
	if err != nil {
		return ctx, err
	}

	tc = GetTestContext(ctx)
	if tc.response.StatusCode != 200 {
		return ctx, fmt.Errorf("verification failed with status %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return ctx, nil
}
