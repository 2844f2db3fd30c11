package models

// ModuleEdit records who last renamed a module and when.
type ModuleEdit struct {
	By string `json:"editado_por"`
	At string `json:"data"`
}

// Module is one unit of a course. Its name doubles as the identifier that
// completion records refer to.
type Module struct {
	Name      string      `json:"nome"`
	CreatedBy string      `json:"criado_por"`
	CreatedAt string      `json:"data_criacao"`
	Lessons   []string    `json:"aulas"`
	LastEdit  *ModuleEdit `json:"ultima_edicao,omitempty"`
}

// Course is one entry of the course catalog. The course id (a decimal
// string, assigned as max existing + 1) is the catalog key, not a field.
type Course struct {
	Name      string   `json:"nome"`
	Duration  string   `json:"carga_horaria"`
	Modules   []Module `json:"modulos"`
	CreatedBy string   `json:"criado_por"`
	CreatedAt string   `json:"data_criacao"`
	EditedBy  string   `json:"editado_por,omitempty"`
	EditedAt  string   `json:"data_edicao,omitempty"`
}

// Normalize fills optional collections omitted by older catalog files.
func (c *Course) Normalize() {
	if c.Modules == nil {
		c.Modules = []Module{}
	}
	for i := range c.Modules {
		if c.Modules[i].Lessons == nil {
			c.Modules[i].Lessons = []string{}
		}
	}
}

// ModuleNames returns the identifiers of all modules, in course order.
func (c *Course) ModuleNames() []string {
	names := make([]string, len(c.Modules))
	for i, m := range c.Modules {
		names[i] = m.Name
	}
	return names
}
