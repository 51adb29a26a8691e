package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestCase_Verdict(t *testing.T) {
	tests := []struct {
		name      string
		tc        TestCase
		succeeded bool
		actual    string
		want      CaseStatus
	}{
		{"explicit success", TestCase{ExpectSuccess: true}, true, "", StatusPass},
		{"success wording", TestCase{ExpectedMessage: "Đăng nhập thành công"}, true, "", StatusPass},
		{"unexpected success", TestCase{ExpectedMessage: "Mật khẩu không chính xác"}, true, "", StatusFailed},
		{"expected failure wording", TestCase{ExpectedMessage: "Hiển thị lỗi"}, false, "", StatusPass},
		{"message match without keywords", TestCase{ExpectedMessage: "Vui lòng nhập  email"}, false, "vui lòng nhập email", StatusPass},
		{"message mismatch", TestCase{ExpectedMessage: "Vui lòng nhập email"}, false, "Tài khoản bị khoá", StatusFailed},
		{"expected success but failed", TestCase{ExpectSuccess: true, ExpectedMessage: "error"}, false, "error", StatusFailed},
		{"nothing expected", TestCase{}, false, "", StatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tc.Verdict(tt.succeeded, tt.actual))
		})
	}
}
