package restapi

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
)

type restPackageRepository struct {
	client *Client
}

func newRestPackageRepository(client *Client) portsrepo.PackageRepositoryFacade {
	return &restPackageRepository{client: client}
}

var _ portsrepo.PackageRepositoryFacade = (*restPackageRepository)(nil)

func (r *restPackageRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return getList[domain.Package](ctx, r.client, "/packages/", nil, "Error loading packages")
}

func (r *restPackageRepository) ListPackageHistory(ctx context.Context) ([]domain.PackageHistory, error) {
	return getList[domain.PackageHistory](ctx, r.client, "/package-history/", nil, "Error loading package history")
}

func (r *restPackageRepository) CreatePackage(ctx context.Context, req domain.PackageWrite) (*domain.Package, error) {
	var created domain.Package
	if err := r.client.post(ctx, "/packages/", req, &created, "Error saving package"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restPackageRepository) UpdatePackage(ctx context.Context, packageID int64, req domain.PackageWrite) (*domain.Package, error) {
	var updated domain.Package
	if err := r.client.put(ctx, itemPath("packages", packageID), req, &updated, "Error saving package"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *restPackageRepository) MarkReceivedAndPay(ctx context.Context, historyID int64, req domain.ReceiveAndPayRequest) error {
	return r.client.post(ctx, itemPath("package-history", historyID, "mark_received_and_pay"), req, nil, "Error processing payment")
}
