package domain

// Actor субъект, от имени которого выполняется операция.
type Actor struct {
	OwnerID int64
	Email   string
	Admin   bool
}

// MayOperate решает, может ли actor управлять сервером. Чистая функция от владельца и сервера.
func (a Actor) MayOperate(s *Server) bool {
	if s == nil {
		return false
	}
	return a.Admin || (a.OwnerID != 0 && a.OwnerID == s.OwnerID)
}

// MayProvision решает, может ли actor заказывать серверы.
func (a Actor) MayProvision() bool {
	return a.OwnerID != 0
}
