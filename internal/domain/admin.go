package domain

type Admin struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// DefaultAdmins is the fixed first-run seed. The admin panel normally owns
// this collection; the seed only fills it when the key is entirely absent.
func DefaultAdmins() []Admin {
	return []Admin{
		{ID: "mica", Name: "Mica", Role: "Dona", Avatar: "assets/admin-mica.jpg"},
		{ID: "rav", Name: "Rav", Role: "Sub Líder", Avatar: "assets/admin-rav.jpg"},
		{ID: "maria", Name: "Maria Costa", Avatar: "assets/admin-maria.jpg"},
		{ID: "joao", Name: "João Oliveira", Avatar: "assets/admin-joao.jpg"},
		{ID: "lucia", Name: "Lucia Ferreira", Avatar: "assets/admin-lucia.jpg"},
		{ID: "pedro", Name: "Pedro Lima", Avatar: "assets/admin-pedro.jpg"},
		{ID: "sofia", Name: "Sofia Rocha", Avatar: "assets/admin-sofia.jpg"},
		{ID: "bruno", Name: "Bruno Alves", Avatar: "assets/admin-bruno.jpg"},
	}
}
