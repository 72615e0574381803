package domain

// ClientScope descreve quais clientes um principal pode ver e alterar
type ClientScope struct {
	all     bool
	squadID *int64
}

func AllClients() ClientScope {
	return ClientScope{all: true}
}

func SquadClients(squadID int64) ClientScope {
	return ClientScope{squadID: &squadID}
}

func NoClients() ClientScope {
	return ClientScope{}
}

// ResolveClientScope: superusuário vê todos os clientes, demais usuários
// apenas os do próprio squad, e quem não tem squad não vê nenhum.
func ResolveClientScope(p *Principal) ClientScope {
	switch {
	case p == nil:
		return NoClients()
	case p.IsSuperuser:
		return AllClients()
	case p.SquadID != nil:
		return SquadClients(*p.SquadID)
	default:
		return NoClients()
	}
}

func (s ClientScope) All() bool {
	return s.all
}

func (s ClientScope) None() bool {
	return !s.all && s.squadID == nil
}

func (s ClientScope) SquadID() (int64, bool) {
	if s.squadID == nil {
		return 0, false
	}
	return *s.squadID, true
}

// Allows é a regra de escrita: o cliente precisa estar dentro do escopo
func (s ClientScope) Allows(c *Client) bool {
	if c == nil {
		return false
	}
	if s.all {
		return true
	}
	if s.squadID == nil || c.SquadID == nil {
		return false
	}
	return *s.squadID == *c.SquadID
}
