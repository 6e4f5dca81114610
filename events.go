package lingo

// Event topics published on the engine's bus. Subscribers receive the
// typed payload structs below.
const (
	// TopicTranslationsChanged fires after any fragment is merged into the
	// translation tree, once per affected locale.
	TopicTranslationsChanged = "translations-changed"

	// TopicNamespacesBeforeLoad fires when a locale switch starts, before
	// any resolver is invoked.
	TopicNamespacesBeforeLoad = "namespaces-before-load"

	// TopicNamespaceLoaded fires after a single namespace has been fetched.
	TopicNamespaceLoaded = "namespace-loaded"

	// TopicNamespacesLoaded fires after all registered namespaces have been
	// fetched for a locale and the aggregate fragment assembled.
	TopicNamespacesLoaded = "namespaces-loaded"

	// TopicLocaleChanged fires once a locale switch has fully settled.
	TopicLocaleChanged = "locale-changed"
)

// TranslationsChanged is the payload for TopicTranslationsChanged.
type TranslationsChanged struct {
	Locale       string
	Translations map[string]any
}

// BeforeLoad is the payload for TopicNamespacesBeforeLoad.
type BeforeLoad struct {
	Locale string
}

// NamespaceLoaded is the payload for TopicNamespaceLoaded.
type NamespaceLoaded struct {
	Name         string
	Locale       string
	Translations map[string]any
}

// NamespacesLoaded is the payload for TopicNamespacesLoaded.
type NamespacesLoaded struct {
	Locale       string
	Translations map[string]any
}

// LocaleChanged is the payload for TopicLocaleChanged.
type LocaleChanged struct {
	Locale       string
	Translations map[string]any
}

// Bus is the pub-sub capability the engine announces changes on.
// pkg/bus provides an in-memory implementation; any bus with matching
// semantics (synchronous or asynchronous dispatch) can be injected.
type Bus interface {
	// Publish delivers payload to every subscriber of topic.
	Publish(topic string, payload any)

	// Subscribe registers fn for topic and returns a subscription id.
	Subscribe(topic string, fn func(payload any)) string

	// Unsubscribe removes a subscription by id. Unknown ids are ignored.
	Unsubscribe(id string)
}
