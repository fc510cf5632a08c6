package cserror

import "fmt"

const (
	CS_UNEXPECTED     = "PGCSU"
	CS_SYNTAX_ERROR   = "PGCSS"
	CS_UNKNOWN_OPTION = "PGCSO"
	CS_INVALID_VALUE  = "PGCSV"
	CS_DECODE_ERROR   = "PGCSD"
)

var existingErrorCodeMap = map[string]string{
	CS_SYNTAX_ERROR:   "connection string syntax error",
	CS_UNKNOWN_OPTION: "unknown connection option",
	CS_INVALID_VALUE:  "invalid connection option value",
	CS_DECODE_ERROR:   "percent-encoded value is not valid text",
}

func GetMessageByCode(errorCode string) string {
	rep, ok := existingErrorCodeMap[errorCode]
	if ok {
		return rep
	}
	return "Unexpected error"
}

var _ error = &CSError{}

type CSError struct {
	Err error

	ErrorCode string
}

func New(errorCode string, errorMsg string) *CSError {
	return &CSError{
		Err:       fmt.Errorf("%s", errorMsg),
		ErrorCode: errorCode,
	}
}

func Newf(errorCode string, format string, args ...any) *CSError {
	return &CSError{
		Err:       fmt.Errorf(format, args...),
		ErrorCode: errorCode,
	}
}

// UnknownOption reports a key outside the recognized option set.
func UnknownOption(key string) *CSError {
	return Newf(CS_UNKNOWN_OPTION, "unknown option `%s`", key)
}

// InvalidValue reports a recognized key whose value failed its grammar.
func InvalidValue(key string) *CSError {
	return Newf(CS_INVALID_VALUE, "invalid value for option `%s`", key)
}

func (er *CSError) Error() string {
	return fmt.Sprintf("Code: %s. Name: %s. Description: %s.",
		er.ErrorCode, GetMessageByCode(er.ErrorCode), er.Err)
}
