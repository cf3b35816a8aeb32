package mustache

// defaultCodeFactory is the concrete CodeFactory this module ships: one
// constructor per code variant, each just forwarding to the variant's
// own constructor.
type defaultCodeFactory struct {
	debug bool
}

func newDefaultCodeFactory(debug bool) *defaultCodeFactory {
	return &defaultCodeFactory{debug: debug}
}

func (f *defaultCodeFactory) Write(text string, line int) Code {
	return newWriteCode(text, line)
}

func (f *defaultCodeFactory) Value(m Handle, name string, encoded bool, line int) Code {
	return newValueCode(m, name, encoded, line)
}

func (f *defaultCodeFactory) Iterable(m Handle, name string, codes []Code, file string, line int) Code {
	return newIterableCode(m, name, codes, file, line)
}

func (f *defaultCodeFactory) IfIterable(m Handle, name string, codes []Code, file string, line int) Code {
	return newIfIterableCode(m, name, codes, file, line)
}

func (f *defaultCodeFactory) InvertedIterable(m Handle, name string, codes []Code, file string, line int) Code {
	return newInvertedIterableCode(m, name, codes, file, line)
}

func (f *defaultCodeFactory) Function(m Handle, name string, codes []Code, file string, line int) Code {
	return newFunctionCode(m, name, codes, file, line)
}

func (f *defaultCodeFactory) Partial(m Handle, name, file string, line int) (Code, error) {
	return newPartialCode(m, name, file, line)
}

func (f *defaultCodeFactory) Extend(m Handle, name string, codes []Code, file string, line int) (Code, error) {
	return newExtendCode(m, name, codes, file, line, f.debug)
}

func (f *defaultCodeFactory) Name(m Handle, name string, codes []Code, file string, line int) Code {
	return newNameCode(m, name, codes, file, line)
}

func (f *defaultCodeFactory) EOF(line int) Code {
	return newEOFCode(line)
}
