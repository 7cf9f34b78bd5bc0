package mocks

//go:generate mockery --dir=.. --name=AdRepository --output=. --outpkg=mocks --structname=MockAdRepository --filename=mock_ad_repository.go --with-expecter
//go:generate mockery --dir=.. --name=AdUseCase --output=. --outpkg=mocks --structname=MockAdUseCase --filename=mock_ad_use_case.go --with-expecter
