package domain

import "errors"

// Credential is the persisted (email, password) record, keyed by email.
type Credential struct {
	Email    string `json:"email" dynamodbav:"email"`
	Password string `json:"password" dynamodbav:"password"`
}

var (
	// ErrEmptyBody indicates the request carried no parseable JSON body.
	ErrEmptyBody = errors.New("El cuerpo de la solicitud está vacío")
	// ErrEmailRequired indicates the registration request lacked an email.
	ErrEmailRequired = errors.New("El correo electrónico no fue proporcionado en la solicitud")
	// ErrCredentialsRequired indicates the validation request lacked email or password.
	ErrCredentialsRequired = errors.New("Se requiere tanto el correo electrónico como la contraseña")
	// ErrUserNotFound indicates no credential record exists for the email.
	ErrUserNotFound = errors.New("Usuario no encontrado")
	// ErrDelivery indicates the notification email could not be sent.
	ErrDelivery = errors.New("No se pudo enviar el correo electrónico. Por favor, inténtalo de nuevo más tarde.")
)

// IsClientError reports whether err belongs to the validation class of
// failures that map to a 400 response.
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptyBody) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrCredentialsRequired) ||
		errors.Is(err, ErrUserNotFound)
}
