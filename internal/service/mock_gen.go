// internal/service/mock_gen.go
package service

//go:generate mockgen -typed -source=./contact.go -destination=../mocks/mock_contact_service.go -package=mocks Verifier,Notifier
//go:generate mockgen -typed -source=./media.go -destination=../mocks/mock_media_service.go -package=mocks FileStore
