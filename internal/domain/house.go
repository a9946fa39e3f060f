package domain

// Roommate é um usuário vinculado à mesma casa
type Roommate struct {
	ID       string `json:"id,omitempty" mapstructure:"id"`
	Username string `json:"username,omitempty" mapstructure:"username"`
	Name     string `json:"name,omitempty" mapstructure:"name"`
	Surname  string `json:"surname,omitempty" mapstructure:"surname"`
	Email    string `json:"email,omitempty" mapstructure:"email"`
}

// DisplayName devolve o nome completo ou, na falta dele, o username
func (r Roommate) DisplayName() string {
	switch {
	case r.Name != "" && r.Surname != "":
		return r.Name + " " + r.Surname
	case r.Name != "":
		return r.Name
	default:
		return r.Username
	}
}

// StatementFile é um extrato bancário enviado pelo usuário
type StatementFile struct {
	Name string
	Data []byte
}

// ImportPreview é o resultado da leitura local de um extrato, sem envio ao backend
type ImportPreview struct {
	FileName  string    `json:"fileName"`
	Separator string    `json:"separator"`
	Rows      int       `json:"rows"`
	Expenses  []Expense `json:"expenses"`
	Metrics   Metrics   `json:"metrics"`
}
