// Package theme holds the visitor's light/dark preference and the palettes
// it selects.
//
// A State is restored from Storage on creation, flipped only by Toggle, and
// observed through Subscribe:
//
//	storage := theme.NewSessionStorage(theme.StoreSession(store, r), r, w, false)
//	st := theme.New(storage, false,
//		theme.WithErrorHandler(func(err error) { logger.Warnf("theme: %v", err) }))
//	unsubscribe := st.Subscribe(func(dark bool) { ... })
//	defer unsubscribe()
//	st.Toggle()
package theme
