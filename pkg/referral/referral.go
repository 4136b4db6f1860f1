package referral

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// CodeType marks the kind of account a referral code belongs to.
type CodeType string

const (
	UserType    CodeType = "USR"
	VirtualType CodeType = "VRT"
)

// GenerateCode returns a code of the form {TYPE}-{RANDOM} where RANDOM is
// 6 base32 characters, e.g. USR-ABC123.
func GenerateCode(codeType CodeType) (string, error) {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}

	randomStr := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	randomStr = strings.ToUpper(randomStr[:6])

	return string(codeType) + "-" + randomStr, nil
}

func GenerateUserCode() (string, error) {
	return GenerateCode(UserType)
}

func GenerateVirtualCode() (string, error) {
	return GenerateCode(VirtualType)
}
