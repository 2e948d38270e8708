package validation

// Bank validates a bank registration.
func (v *Validator) Bank(name, bankUUID, token, url string) {
	v.Required("name", name)
	v.MaxLength("name", name, MaxBankNameLength)
	v.UUID("uuid", bankUUID)
	v.Required("token", token)
	v.MaxLength("token", token, MaxTokenLength)
	v.URL("url", url)
}
