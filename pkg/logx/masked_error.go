package logx

// MaskedError carries the masked text of an error. The original error stays in
// the chain for errors.Is and errors.As.
type MaskedError struct {
	err     error
	message string
}

// MaskError hides sensitive data in the message of err. net/http puts the full
// request URL into its errors, and Bot API URLs contain the bot token.
func MaskError(masker SensitiveDataMaskerInterface, err error) error {
	if err == nil {
		return nil
	}

	return &MaskedError{
		err:     err,
		message: string(masker.Mask([]byte(err.Error()))),
	}
}

func (e *MaskedError) Error() string {
	return e.message
}

func (e *MaskedError) Unwrap() error {
	return e.err
}
