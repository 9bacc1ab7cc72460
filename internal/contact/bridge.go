package contact

// Bridge carries the one-way "request a quote for this lot" signal from the
// lot browser to the contact form. It is fire-and-forget.
type Bridge interface {
	FocusContactWith(lotID string)
}

// BridgeFunc adapts a function to Bridge. A nil BridgeFunc does nothing.
type BridgeFunc func(lotID string)

func (f BridgeFunc) FocusContactWith(lotID string) {
	if f != nil {
		f(lotID)
	}
}

// Focus sends lotID through b. A nil bridge means no contact form is
// mounted and the signal is dropped.
func Focus(b Bridge, lotID string) {
	if b == nil {
		return
	}
	b.FocusContactWith(lotID)
}
