package i18n

// Package i18n holds the translated UI and result texts (en, ru, pt). It has
// no GUI dependencies so the desktop window and the command line tool share it.
