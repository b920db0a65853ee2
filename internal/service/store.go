package service

import (
	"context"
	"errors"
	"file-shop-demo/internal/model"
	"file-shop-demo/internal/repository"
	"log"
	"sync"
)

var (
	ErrFileNotFound = errors.New("file not found in catalog")
	ErrNotAFile     = errors.New("selected node is not a file")
)

// FileSelection is the outcome of clicking a file: either the stored download
// url for an already-purchased file, or a freshly opened payment session.
type FileSelection struct {
	File        *model.CatalogNode
	Purchased   bool
	DownloadURL string
	Session     *PaymentSession
}

// StoreService glues navigation and purchasing together for one user session.
type StoreService interface {
	// SelectFolder records the new current folder and returns a fresh listing.
	// Every call hits the navigator again; listings are never memoized.
	SelectFolder(ctx context.Context, folderID string) ([]*model.CatalogNode, error)
	CurrentFolder() string
	// SelectFile short-circuits to the ledger record when the file was already
	// purchased and opens a payment session otherwise.
	SelectFile(ctx context.Context, fileID string) (*FileSelection, error)
	// ConfirmDownload hands the reference to the external download
	// collaborator; fetching bytes is not the store's business.
	ConfirmDownload(downloadURL string) string
	// EndSession clears the purchase ledger (logout).
	EndSession(ctx context.Context) error
}

type storeServiceImpl struct {
	catalogService CatalogService
	paymentService PaymentService
	purchaseRepo   repository.PurchaseRepository

	mu            sync.Mutex
	currentFolder string
}

func NewStoreService(
	catalogService CatalogService,
	paymentService PaymentService,
	purchaseRepo repository.PurchaseRepository,
) StoreService {
	return &storeServiceImpl{
		catalogService: catalogService,
		paymentService: paymentService,
		purchaseRepo:   purchaseRepo,
	}
}

func (s *storeServiceImpl) SelectFolder(ctx context.Context, folderID string) ([]*model.CatalogNode, error) {
	s.mu.Lock()
	s.currentFolder = folderID
	s.mu.Unlock()

	return s.catalogService.ListChildren(ctx, folderID)
}

func (s *storeServiceImpl) CurrentFolder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentFolder
}

func (s *storeServiceImpl) SelectFile(ctx context.Context, fileID string) (*FileSelection, error) {
	file, err := s.catalogService.FindNode(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrFileNotFound
	}
	if !file.IsFile() {
		return nil, ErrNotAFile
	}

	// Already purchased: reuse the stored record, no new session.
	record, err := s.purchaseRepo.FindByFileID(ctx, file.ID)
	if err == nil {
		return &FileSelection{
			File:        file,
			Purchased:   true,
			DownloadURL: record.DownloadURL,
		}, nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, err
	}

	session, err := s.paymentService.Open(file)
	if err != nil {
		return nil, err
	}

	return &FileSelection{
		File:    file,
		Session: session,
	}, nil
}

func (s *storeServiceImpl) ConfirmDownload(downloadURL string) string {
	log.Println("handing off download reference:", downloadURL)
	return downloadURL
}

func (s *storeServiceImpl) EndSession(ctx context.Context) error {
	return s.purchaseRepo.Clear(ctx)
}
