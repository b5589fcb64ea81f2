package i18n

import "github.com/ytget/zip-lookup/internal/render"

// ZipPlaceholderDigits is the example code shown in the ZIP input hint
const ZipPlaceholderDigits = "90210"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyLookup            = "lookup"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyEnterZip          = "enter_zip"
	KeyAPIBaseURL        = "api_base_url"
	KeyAssetDirectory    = "asset_directory"
	KeyRequestTimeout    = "request_timeout"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyOpenFolder        = "open_folder"
	KeySettingsSaved     = "settings_saved"
	KeyFoundFormat       = "found_format"
	KeyNotFoundFormat    = "not_found_format"
	KeyFailureFormat     = "failure_format"
	KeyNoPlaces          = "no_places"
	KeyHeaderState       = "header_state"
	KeyHeaderPlace       = "header_place"
	KeyHeaderCoordinates = "header_coordinates"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// RenderMessages returns the result texts for the current language
func (l *Localization) RenderMessages() render.Messages {
	return render.Messages{
		FoundFormat:       l.GetText(KeyFoundFormat),
		NotFoundFormat:    l.GetText(KeyNotFoundFormat),
		FailureFormat:     l.GetText(KeyFailureFormat),
		NoPlaces:          l.GetText(KeyNoPlaces),
		HeaderState:       l.GetText(KeyHeaderState),
		HeaderPlace:       l.GetText(KeyHeaderPlace),
		HeaderCoordinates: l.GetText(KeyHeaderCoordinates),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	english := render.DefaultMessages()

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "ZIP Lookup",
		KeyLookup:            "Look up",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyEnterZip:          "Enter a 5 digit ZIP code (" + ZipPlaceholderDigits + ")",
		KeyAPIBaseURL:        "Postal API URL",
		KeyAssetDirectory:    "State graphics directory",
		KeyRequestTimeout:    "Request timeout, seconds (0 = none)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyOpenFolder:        "Open",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyFoundFormat:       english.FoundFormat,
		KeyNotFoundFormat:    english.NotFoundFormat,
		KeyFailureFormat:     english.FailureFormat,
		KeyNoPlaces:          english.NoPlaces,
		KeyHeaderState:       english.HeaderState,
		KeyHeaderPlace:       english.HeaderPlace,
		KeyHeaderCoordinates: english.HeaderCoordinates,
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Поиск по ZIP",
		KeyLookup:            "Найти",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyEnterZip:          "Введите 5-значный ZIP-код (" + ZipPlaceholderDigits + ")",
		KeyAPIBaseURL:        "Адрес почтового API",
		KeyAssetDirectory:    "Папка с изображениями штатов",
		KeyRequestTimeout:    "Тайм-аут запроса, секунды (0 = нет)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyOpenFolder:        "Открыть",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyFoundFormat:       "ZIP-код %s",
		KeyNotFoundFormat:    "ZIP-код %s не существует в США.",
		KeyFailureFormat:     "Поиск %s не удался: %s",
		KeyNoPlaces:          "Не найдено ни одного населённого пункта для этого ZIP-кода",
		KeyHeaderState:       "Штат",
		KeyHeaderPlace:       "Населённый пункт",
		KeyHeaderCoordinates: "Широта / Долгота",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Consulta de ZIP",
		KeyLookup:            "Consultar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyEnterZip:          "Digite um ZIP de 5 dígitos (" + ZipPlaceholderDigits + ")",
		KeyAPIBaseURL:        "URL da API postal",
		KeyAssetDirectory:    "Diretório das imagens dos estados",
		KeyRequestTimeout:    "Tempo limite, segundos (0 = nenhum)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyOpenFolder:        "Abrir",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyFoundFormat:       "Código ZIP %s",
		KeyNotFoundFormat:    "O código ZIP %s não existe nos Estados Unidos.",
		KeyFailureFormat:     "A consulta de %s falhou: %s",
		KeyNoPlaces:          "Não encontramos nenhum local associado a este código ZIP",
		KeyHeaderState:       "Estado",
		KeyHeaderPlace:       "Local",
		KeyHeaderCoordinates: "Latitude / Longitude",
	}
}
