package pages

import (
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"swag_automation/internal/config"
)

// Login page selectors.
const (
	loginUsernameInput = "#user-name"
	loginPasswordInput = "#password"
	loginButton        = "#login-button"
	loginErrorMessage  = "[data-test='error']"
	loginErrorButton   = ".error-button"
	loginLogo          = ".login_logo"
)

// LoginPage drives the authentication screen at the application root.
type LoginPage struct {
	base
}

func NewLoginPage(page playwright.Page, cfg *config.Config, logger *zap.Logger) *LoginPage {
	return &LoginPage{base: newBase(page, cfg, logger, "login", "")}
}

// Login fills both credential fields and submits the form.
func (p *LoginPage) Login(username, password string) error {
	p.log.Info("logging in", zap.String("username", username))
	if err := p.Fill(loginUsernameInput, username); err != nil {
		return err
	}
	if err := p.Fill(loginPasswordInput, password); err != nil {
		return err
	}
	return p.Click(loginButton)
}

func (p *LoginPage) EnterUsername(username string) error {
	return p.Fill(loginUsernameInput, username)
}

func (p *LoginPage) EnterPassword(password string) error {
	return p.Fill(loginPasswordInput, password)
}

func (p *LoginPage) ClickLogin() error {
	return p.Click(loginButton)
}

// CloseError dismisses the error banner via its X button, if one is shown.
func (p *LoginPage) CloseError() error {
	if !p.IsErrorDisplayed() {
		return nil
	}
	return p.Click(loginErrorButton)
}

// ErrorMessage returns the visible error banner text, or "" when no error is
// displayed.
func (p *LoginPage) ErrorMessage() (string, error) {
	if !p.IsErrorDisplayed() {
		return "", nil
	}
	return p.Text(loginErrorMessage)
}

func (p *LoginPage) IsErrorDisplayed() bool {
	return p.IsVisible(loginErrorMessage)
}

// IsLoaded reports whether the login form's defining elements are all
// visible.
func (p *LoginPage) IsLoaded() bool {
	return p.IsVisible(loginUsernameInput) &&
		p.IsVisible(loginPasswordInput) &&
		p.IsVisible(loginButton)
}
