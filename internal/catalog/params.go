package catalog

// Constructors keep the tool tables compact. Params default to optional body
// fields; path params are always required.

func path(name, description string) Param {
	return Param{Name: name, Description: description, Type: "string", In: InPath, Required: true}
}

func str(name, description string) Param {
	return Param{Name: name, Description: description, Type: "string"}
}

func num(name, description string) Param {
	return Param{Name: name, Description: description, Type: "number"}
}

func boolean(name, description string) Param {
	return Param{Name: name, Description: description, Type: "boolean"}
}

func object(name, description string, properties ...Param) Param {
	return Param{Name: name, Description: description, Type: "object", Properties: properties}
}

func array(name, description string, items Param) Param {
	return Param{Name: name, Description: description, Type: "array", Items: &items}
}

func (p Param) required() Param {
	p.Required = true
	return p
}

func (p Param) query() Param {
	p.In = InQuery
	return p
}

func (p Param) bodyRoot() Param {
	p.In = InBodyRoot
	return p
}

func (p Param) enum(values ...string) Param {
	p.Enum = values
	return p
}

func (p Param) between(lo, hi float64) Param {
	p.Min = &lo
	p.Max = &hi
	return p
}

func (p Param) atLeast(lo float64) Param {
	p.Min = &lo
	return p
}

func (p Param) format(f string) Param {
	p.Format = f
	return p
}

// Shared pagination params.

func pageSize(description string) Param {
	return num("page_size", description).between(1, 300).query()
}

func pageNumber() Param {
	return num("page_number", "Page number").atLeast(1).query()
}

func nextPageToken() Param {
	return str("next_page_token", "Next page token").query()
}
