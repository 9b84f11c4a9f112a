// Package dispatcher routes capability calls across a registry of
// interchangeable backends.
//
// A Dispatcher is built once from a catalog and shared. Each call draws a
// backend at random in proportion to its effective weight, records the
// outcome into that backend's health state and, on failure, retries the
// remaining backends of the call's candidate pool. A call tries every
// backend at most once and either succeeds or returns a *NoAvailableError
// carrying how long the caller should wait before trying again.
//
//	d, err := dispatcher.New("translator", catalog.Translators(client), names)
//	if err != nil {
//		return err
//	}
//	tr, err := dispatcher.Call(ctx, d, func(ctx context.Context, t provider.Translator) (provider.Translation, error) {
//		return t.Translate(ctx, text, source, target)
//	})
package dispatcher
