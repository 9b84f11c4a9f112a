// Package translate detects and translates text through a pool of
// interchangeable public backends.
//
// A Detector or Translator routes every call to one of its registered
// backends, chosen at random in proportion to each backend's weight, and
// fails over to the others when it errors. Backends that keep failing are
// backed off for growing windows and come back on their first success.
//
//	tr, err := translate.NewTranslator(translate.WithStrategy(translate.Default()))
//	if err != nil {
//		return err
//	}
//	res, err := tr.Translate(ctx, "hello world", translate.Auto, translate.ChineseSimplified)
//
// Instances are safe for concurrent use and meant to be shared. When every
// backend is excluded, calls fail with a *NoAvailableError whose Wait says
// how long to back off.
package translate
