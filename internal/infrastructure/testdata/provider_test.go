package testdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
login:
  - title: wrong password
    step: submit form
    username: demo@happyorder.vn
    password: nope
    expected_message: Tài khoản hoặc mật khẩu không chính xác
  - username: demo@happyorder.vn
    password: correct
    expect_success: true
home:
  - title: dashboard visible
`

func TestParse(t *testing.T) {
	p, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"home", "login"}, p.Scenarios())

	rows, err := p.Cases("login")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "wrong password", rows[0].Title)
	assert.Equal(t, "Tài khoản hoặc mật khẩu không chính xác", rows[0].ExpectedMessage)
	assert.False(t, rows[0].ExpectSuccess)
	assert.Equal(t, "login #2", rows[1].Title)
	assert.True(t, rows[1].ExpectSuccess)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("login:\n  - usr: x\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, p.Scenarios())
}

func TestCases_UnknownScenario(t *testing.T) {
	p, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	_, err = p.Cases("checkout")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestCases_ReturnsCopy(t *testing.T) {
	p, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	rows, _ := p.Cases("login")
	rows[0].Title = "mutated"

	again, _ := p.Cases("login")
	assert.Equal(t, "wrong password", again[0].Title)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	rows, err := p.Cases("home")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
