package plexnet

// Attributes is a fully fetched attribute set. Lookups never reload.
type Attributes map[string]Value

func newAttributes(elem *Element, server Transport) Attributes {
	a := make(Attributes, len(elem.Attrs))
	for k, v := range elem.Attrs {
		a[k] = NewValue(v, server)
	}
	return a
}

// Get returns the attribute or a value that isn't Available.
func (a Attributes) Get(name string) Value {
	if v, ok := a[name]; ok {
		return v
	}
	var server Transport
	for _, v := range a {
		server = v.server
		break
	}
	return unavailable(server)
}

// Player is a client currently playing something.
type Player struct {
	Attributes
	Server Transport
}

// TranscodeSession describes a transcode in progress.
type TranscodeSession struct {
	Attributes
	Server Transport
}

// User is the account an item or session belongs to.
type User struct {
	Attributes
	InitPath string
}

// FindLocation returns the path attribute of the Location child of data.
func (o *Object) FindLocation(data *Element) (string, bool) {
	elem := data.Find("Location")
	if elem == nil {
		return "", false
	}
	return elem.Attr("path")
}

func (o *Object) FindPlayer(data *Element) *Player {
	elem := data.Find("Player")
	if elem == nil {
		return nil
	}
	server := o.Server()
	return &Player{Attributes: newAttributes(elem, server), Server: server}
}

func (o *Object) FindTranscodeSession(data *Element) *TranscodeSession {
	elem := data.Find("TranscodeSession")
	if elem == nil {
		return nil
	}
	server := o.Server()
	return &TranscodeSession{Attributes: newAttributes(elem, server), Server: server}
}

func (o *Object) FindUser(data *Element) *User {
	elem := data.Find("User")
	if elem == nil {
		return nil
	}
	return &User{Attributes: newAttributes(elem, nil), InitPath: o.InitPath()}
}
