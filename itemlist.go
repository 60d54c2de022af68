package plexnet

// ItemConstructor builds a child that only needs the server.
type ItemConstructor func(elem *Element, server Transport) Entity

// MediaItemConstructor builds a child that also needs the path it was
// listed under and the media it belongs to.
type MediaItemConstructor func(elem *Element, initPath string, server Transport, media Entity) Entity

// ItemList is a list of children built from raw elements the first time
// it's read. After that the elements are never looked at again.
type ItemList struct {
	data      []*Element
	tag       string
	build     func(*Element) Entity
	items     []Entity
	populated bool
}

// NewItemList keeps the elements of data tagged tag. server may be nil.
func NewItemList(data []*Element, c ItemConstructor, tag string, server Transport) *ItemList {
	return &ItemList{
		data: data,
		tag:  tag,
		build: func(e *Element) Entity {
			return c(e, server)
		},
	}
}

// NewMediaItemList is NewItemList for children that carry their media and initPath.
func NewMediaItemList(data []*Element, c MediaItemConstructor, tag, initPath string, server Transport, media Entity) *ItemList {
	return &ItemList{
		data: data,
		tag:  tag,
		build: func(e *Element) Entity {
			return c(e, initPath, server, media)
		},
	}
}

// Items materializes the list on first use and returns the same slice afterwards.
func (l *ItemList) Items() []Entity {
	if l.populated {
		return l.items
	}

	l.items = []Entity{}
	for _, e := range l.data {
		if e.Tag != l.tag {
			continue
		}
		l.items = append(l.items, l.build(e))
	}
	l.populated = true
	return l.items
}

func (l *ItemList) Len() int {
	return len(l.Items())
}

func (l *ItemList) At(i int) Entity {
	return l.Items()[i]
}

func (l *ItemList) Append(item Entity) {
	l.items = append(l.Items(), item)
}
