package helpers

import (
	uuid "github.com/nu7hatch/gouuid"
)

func GenerateGUID() (string, error) {
	guid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return guid.String(), nil
}
