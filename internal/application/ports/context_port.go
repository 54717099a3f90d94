package ports

// ContextProvider arma el contexto de grounding para una consulta del
// asistente. Es un puerto para poder sustituir el matching por palabra clave
// por búsqueda semántica real sin tocar el resto del flujo.
type ContextProvider interface {
	BuildContext(query string) (string, error)
}
