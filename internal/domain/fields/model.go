package fields

import (
	"strconv"
	"time"
)

// FormKeyPrefix es el prefijo de los inputs dinámicos en el formulario de paciente.
const FormKeyPrefix = "custom_"

// Field es un campo definido por el administrador (FieldCustomization).
// El ID es una secuencia numérica para que los inputs queden como custom_1, custom_2...
type Field struct {
	ID        int64
	Label     string
	CreatedAt time.Time
}

// FormKey es el nombre del input HTML para este campo.
func (f Field) FormKey() string {
	return FormKeyPrefix + strconv.FormatInt(f.ID, 10)
}
