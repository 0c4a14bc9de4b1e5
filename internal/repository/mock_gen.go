// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./hof.go -destination=../mocks/mock_hof_repository.go -package=mocks HOFRepositoryIface
//go:generate mockgen -typed -source=./jury.go -destination=../mocks/mock_jury_repository.go -package=mocks JuryRepositoryIface
//go:generate mockgen -typed -source=./challenge.go -destination=../mocks/mock_challenge_repository.go -package=mocks ChallengeRepositoryIface
//go:generate mockgen -typed -source=./featured.go -destination=../mocks/mock_featured_repository.go -package=mocks FeaturedRepositoryIface
//go:generate mockgen -typed -source=./news.go -destination=../mocks/mock_news_repository.go -package=mocks NewsRepositoryIface
//go:generate mockgen -typed -source=./contact.go -destination=../mocks/mock_contact_repository.go -package=mocks ContactRepositoryIface
//go:generate mockgen -typed -source=./case_study.go -destination=../mocks/mock_case_study_repository.go -package=mocks CaseStudyRepositoryIface
//go:generate mockgen -typed -source=./media.go -destination=../mocks/mock_media_repository.go -package=mocks MediaRepositoryIface
//go:generate mockgen -typed -source=./story.go -destination=../mocks/mock_story_repository.go -package=mocks StoryRepositoryIface
